package main

import "net/http"

func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.writeJSON(w, http.StatusOK, map[string]bool{"ok": true}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
