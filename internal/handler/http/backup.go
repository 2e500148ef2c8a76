package http

import (
	"encoding/json"
	"net/http"

	"github.com/campcrew/shiftboard-backend-go/internal/handler/http/response"
	"github.com/campcrew/shiftboard-backend-go/internal/service/backup"
)

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backup.BackupService
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &backupHandlerImpl{
		backupService: backupService,
	}
}

func (h *backupHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	blob, err := h.backupService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, blob)
}

func (h *backupHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	var blob backup.Blob
	if err := json.NewDecoder(r.Body).Decode(&blob); err != nil {
		response.BadRequest(w, "Invalid backup blob", nil)
		return
	}

	if err := h.backupService.Restore(r.Context(), blob); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backup restored successfully", nil)
}
