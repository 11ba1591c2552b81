package api

import (
	"net/http"

	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// getAllUsers lists registered users for the read-only console table
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find users", "users", err))
			return
		}

		views := make([]UserView, 0, len(users))
		for _, user := range users {
			views = append(views, newUserView(user))
		}

		h.responder.WriteJSON(w, newListResponse(views, emptyUsers))
	}
}
