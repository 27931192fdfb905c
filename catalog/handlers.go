package catalog

import (
	"net/http"

	"shubharambh/utils"

	"github.com/julienschmidt/httprouter"
)

// GetCategories handles GET /api/categories.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": All()})
}

// GetCategory handles GET /api/categories/:category.
func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	spec, ok := Lookup(ps.ByName("category"))
	if !ok {
		http.Error(w, `{"error":"Unknown category"}`, http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"category": spec})
}
