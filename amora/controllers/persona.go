package controllers

import (
	"amora/amora/sources/psql/dao"
	"amora/amora/sources/psql/models"
	"context"
	"fmt"
	"io"

	"amora/amora/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaStore holds persona profile photos. Satisfied by the MinIO
// client; nil when media storage is not configured.
type MediaStore interface {
	PhotoURL(ctx context.Context, key string) (string, error)
	UploadPersonaPhoto(ctx context.Context, personaID, filename, contentType string, body io.Reader, size int64) (string, error)
}

// PersonaView is the discover-feed shape of a persona: character sheet
// internals (prompt notes, photo keys) stay server-side.
type PersonaView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Vibes    []string `json:"vibes"`
	Photos   []string `json:"photos"`
}

type PersonaController struct {
	personaDAO *dao.PersonaDAO
	media      MediaStore
}

func NewPersonaController(personaDAO *dao.PersonaDAO, media MediaStore) *PersonaController {
	return &PersonaController{personaDAO: personaDAO, media: media}
}

// ListDiscover returns the personas the user can still swipe on.
func (c *PersonaController) ListDiscover(ctx context.Context, userID int) ([]PersonaView, error) {
	personas, err := c.personaDAO.ListUnswiped(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]PersonaView, 0, len(personas))
	for i := range personas {
		views = append(views, c.view(ctx, &personas[i]))
	}
	return views, nil
}

// UploadPhoto stores a new profile photo for the persona and records
// its object key. Fails when media storage is not configured.
func (c *PersonaController) UploadPhoto(ctx context.Context, personaID uuid.UUID, filename, contentType string, body io.Reader, size int64) error {
	if c.media == nil {
		return fmt.Errorf("%w: media storage not configured", ErrInvalidRequest)
	}
	persona, err := c.personaDAO.GetPersonaByID(ctx, personaID)
	if err != nil {
		return err
	}
	if persona == nil {
		return ErrNotFound
	}
	key, err := c.media.UploadPersonaPhoto(ctx, personaID.String(), filename, contentType, body, size)
	if err != nil {
		return err
	}
	return c.personaDAO.SetPhotoKey(ctx, personaID, key)
}

func (c *PersonaController) view(ctx context.Context, p *models.Persona) PersonaView {
	v := PersonaView{
		ID:       p.ID.String(),
		Name:     p.Name,
		Age:      p.Age,
		Gender:   p.Gender,
		Bio:      p.Bio,
		Location: p.Location,
		Vibes:    vibeList(p.Vibes),
		Photos:   []string{},
	}
	if c.media != nil && p.PhotoKey != "" {
		url, err := c.media.PhotoURL(ctx, p.PhotoKey)
		if err != nil {
			logging.ErrorLogger.Error("failed to presign persona photo",
				zap.String("persona_id", v.ID), zap.Error(err))
		} else {
			v.Photos = append(v.Photos, url)
		}
	}
	return v
}
