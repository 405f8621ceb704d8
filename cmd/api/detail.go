package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

//	@Summary		Open the detail view
//	@Description	Opens the product at media index 0 and records a popularity hit in the background. Unknown IDs leave the view untouched.
//	@Tags			Detail
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Param			productID	path		string	true	"Product ID"
//	@Success		200			{object}	browser.View
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/detail/{productID} [post]
func (app *application) openDetailHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	b.OpenDetail(chi.URLParam(r, "productID"))

	if err := app.jsonResponse(w, http.StatusOK, b.View("")); err != nil {
		app.internalServerError(w, r, err)
	}
}

type selectMediaPayload struct {
	Index int `json:"index"`
}

//	@Summary		Select a media item
//	@Description	Moves the open detail view to the given media index, clamped to the product's media list.
//	@Tags			Detail
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Session ID"
//	@Param			payload		body		selectMediaPayload	true	"Media index"
//	@Success		200			{object}	browser.View
//	@Failure		400			{object}	error	"Invalid payload"
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/detail/media [put]
func (app *application) selectMediaHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	var payload selectMediaPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	b.SelectMedia(payload.Index)

	if err := app.jsonResponse(w, http.StatusOK, b.View("")); err != nil {
		app.internalServerError(w, r, err)
	}
}

//	@Summary		Close the detail view
//	@Description	Returns to the grid. Closing an already-closed view is a no-op.
//	@Tags			Detail
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	browser.View
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/detail [delete]
func (app *application) closeDetailHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	b.CloseDetail()

	if err := app.jsonResponse(w, http.StatusOK, b.View("")); err != nil {
		app.internalServerError(w, r, err)
	}
}
