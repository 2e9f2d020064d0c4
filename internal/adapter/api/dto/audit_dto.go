package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/audit"
)

// AuditEntryResponse representa uma linha do log de auditoria
type AuditEntryResponse struct {
	ID        int64           `json:"id"`
	TableName string          `json:"table_name"`
	Operation string          `json:"operation"`
	RecordID  string          `json:"record_id"`
	OldData   json.RawMessage `json:"old_data,omitempty" swaggertype:"object"`
	NewData   json.RawMessage `json:"new_data,omitempty" swaggertype:"object"`
	Username  string          `json:"username"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToAuditEntryResponse converte uma entrada do log para DTO
func ToAuditEntryResponse(e *audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		TableName: e.TableName,
		Operation: string(e.Operation),
		RecordID:  e.RecordID,
		OldData:   e.OldData,
		NewData:   e.NewData,
		Username:  e.Username,
		CreatedAt: e.CreatedAt,
	}
}

// ToAuditListResponse converte entradas do log para DTO paginado
func ToAuditListResponse(entries []*audit.Entry, totalCount int, p Pagination) ListResponse[AuditEntryResponse] {
	return NewListResponse(mapSlice(entries, ToAuditEntryResponse), totalCount, p)
}
