package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.jwtMiddleware)

	mux := pat.New()

	// Directory (public)
	mux.Get("/mechanics", standardMiddleware.ThenFunc(app.mechanicHandler.GetMechanics))
	mux.Post("/mechanics/filtered", standardMiddleware.ThenFunc(app.mechanicHandler.GetFilteredMechanics))
	mux.Get("/mechanics/stats", standardMiddleware.ThenFunc(app.mechanicHandler.GetMechanicStats))
	mux.Post("/mechanics/check_username", standardMiddleware.ThenFunc(app.mechanicHandler.CheckUsername))

	// Profiles
	mux.Post("/mechanic", authMiddleware.ThenFunc(app.mechanicHandler.CreateMechanic))
	mux.Get("/mechanic/user/:user_id", authMiddleware.ThenFunc(app.mechanicHandler.GetMechanicByUserID))
	mux.Put("/mechanic/user/:user_id", authMiddleware.ThenFunc(app.mechanicHandler.UpdateMechanic))
	mux.Get("/mechanic/:id", standardMiddleware.ThenFunc(app.mechanicHandler.GetMechanicByID))

	// Taxonomy
	mux.Get("/categories", standardMiddleware.ThenFunc(app.taxonomyHandler.GetCategories))
	mux.Get("/states", standardMiddleware.ThenFunc(app.taxonomyHandler.GetStates))
	mux.Get("/districts/:state", standardMiddleware.ThenFunc(app.taxonomyHandler.GetDistrictsByState))

	// Reviews (any visitor may submit)
	mux.Post("/review", standardMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/review/:mechanic_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByMechanicID))

	// Favorites
	mux.Post("/favorites/toggle", authMiddleware.ThenFunc(app.favoriteHandler.ToggleFavorite))
	mux.Get("/favorites/check/:mechanic_id", authMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))

	// Profile images
	mux.Post("/upload/profile", authMiddleware.ThenFunc(app.uploadHandler.UploadProfileImage))
	mux.Del("/upload/profile", authMiddleware.ThenFunc(app.uploadHandler.DeleteProfileImage))

	return standardMiddleware.Then(mux)
}
