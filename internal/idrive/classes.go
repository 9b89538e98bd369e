package idrive

import (
	"context"
	"fmt"
	"net/http"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

// ClassPayload is the create/update body for `/clases/`
type ClassPayload struct {
	Name            string `json:"nombre_clase"`
	Description     string `json:"descripcion"`
	ScheduledAt     string `json:"fecha_hora"`
	TeacherID       int64  `json:"id_profesor"`
	RoomID          int64  `json:"id_salon"`
	Capacity        int    `json:"cupos_disponibles"`
	DurationMinutes int    `json:"duracion_minutos"`
}

// Classes lists all scheduled classes
func (c *Client) Classes(ctx context.Context, cred Credential) ([]models.Class, error) {
	var classes []models.Class
	if err := c.do(ctx, cred, http.MethodGet, "/clases/", nil, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// CreateClass schedules a new class
func (c *Client) CreateClass(ctx context.Context, cred Credential, payload ClassPayload) (models.Class, error) {
	var created models.Class
	if err := c.do(ctx, cred, http.MethodPost, "/clases/", payload, &created); err != nil {
		return models.Class{}, err
	}
	return created, nil
}

// UpdateClass rewrites an existing class
func (c *Client) UpdateClass(ctx context.Context, cred Credential, id int64, payload ClassPayload) (models.Class, error) {
	var updated models.Class
	if err := c.do(ctx, cred, http.MethodPut, fmt.Sprintf("/clases/%d", id), payload, &updated); err != nil {
		return models.Class{}, err
	}
	return updated, nil
}

// DeleteClass removes a class
func (c *Client) DeleteClass(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, cred, http.MethodDelete, fmt.Sprintf("/clases/%d", id), nil, nil)
}
