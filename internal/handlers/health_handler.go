package handlers

import (
	"net/http"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ok"))
}

// ReadyzHandler reports ready only when the database answers a ping.
func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	sqlDB, err := handler.db.DB()
	if err != nil || sqlDB.PingContext(request.Context()) != nil {
		writer.WriteHeader(http.StatusServiceUnavailable)
		writer.Write([]byte("not ready"))
		return
	}
	writer.WriteHeader(http.StatusOK)
	writer.Write([]byte("ready"))
}
