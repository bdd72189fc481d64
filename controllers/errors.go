package controllers

import (
	"errors"
	"net/http"

	"github.com/warriorfdkl/kalogram/apperr"
)

// errorResponse maps an error kind to the status and the single user-facing
// message the mini app shows for it. Raw upstream errors never cross this
// boundary.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrConfiguration):
		return http.StatusInternalServerError, "Распознавание не настроено. Обратитесь к администратору."
	case errors.Is(err, apperr.ErrParse):
		return http.StatusBadGateway, "Не удалось распознать блюдо. Попробуйте еще раз."
	case errors.Is(err, apperr.ErrUpstream):
		return http.StatusBadGateway, "Ошибка при анализе фото. Попробуйте еще раз."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
