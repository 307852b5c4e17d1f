package menu

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrCorruptState возвращается, когда снапшот сессии не декодируется
	ErrCorruptState = errors.New("session state is corrupt")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("menu service: internal error")
)
