package apperr

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/gymprogress/pkg"

	log "github.com/sirupsen/logrus"
)

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP renders err as {"kind": ..., "message": ...} with the matching status.
func WriteHTTP(w http.ResponseWriter, err error) {
	res := AsResult(err)
	resJson, mErr := json.Marshal(res)
	if mErr != nil {
		log.Errorf("marshal failure result: %s", mErr)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, HTTPStatus(res.Kind))
}
