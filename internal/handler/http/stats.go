package http

import (
	"net/http"
	"time"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/stats"
	"github.com/campcrew/shiftboard-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// Monthly serves `?month=YYYY-MM`, defaulting to the current month.
func (h *statsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	result, err := h.statsService.Monthly(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
