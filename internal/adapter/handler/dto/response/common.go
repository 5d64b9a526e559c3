package response

import (
	"github.com/boardline/boardline-backend/internal/domain/valueobject"
	"github.com/boardline/boardline-backend/internal/pkg/pagination"
)

type LocalizedTextResponse struct {
	EN string `json:"en"`
	BG string `json:"bg,omitempty"`
}

func LocalizedTextFromValue(t valueobject.LocalizedText) LocalizedTextResponse {
	return LocalizedTextResponse{EN: t.EN, BG: t.BG}
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
