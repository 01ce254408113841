package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/isdelr/brainstash-be/internal/models"
)

// ContentServiceProvider defines the interface for content services.
type ContentServiceProvider interface {
	CreateContent(userID, title string, links []string) (models.Content, error)
	GetContentForUser(userID string) ([]models.Content, error)
	DeleteContent(userID, contentID string) error
}

// ContentService provides business logic for user-owned content.
type ContentService struct {
	db *sql.DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{db: db}
}

// scanContent is a helper to scan a content record from a row or rows object.
func scanContent(scanner interface{ Scan(...interface{}) error }) (models.Content, error) {
	var content models.Content
	var links, tags sql.NullString

	err := scanner.Scan(&content.ID, &content.Title, &links, &tags, &content.UserID, &content.Username, &content.CreatedAt)
	if err != nil {
		return content, err
	}

	content.LinksJSON = links.String
	content.TagsJSON = tags.String
	content.PrepareForAPI()
	return content, nil
}

// CreateContent adds a new content record owned by the given user. Tags are
// always empty on create; the column exists for later.
func (s *ContentService) CreateContent(userID, title string, links []string) (models.Content, error) {
	content := models.Content{
		ID:     uuid.New().String(),
		Title:  title,
		UserID: userID,
		Links:  links,
		Tags:   []string{},
	}
	content.PrepareForSave()

	stmt, err := s.db.Prepare("INSERT INTO contents(id, title, links_json, tags_json, user_id) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Content{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(content.ID, content.Title, content.LinksJSON, content.TagsJSON, content.UserID)
	if err != nil {
		return models.Content{}, err
	}
	return content, nil
}

// GetContentForUser retrieves all content owned by the given user, with the
// owner's username attached.
func (s *ContentService) GetContentForUser(userID string) ([]models.Content, error) {
	const query = `
		SELECT c.id, c.title, c.links_json, c.tags_json, c.user_id, u.username, c.created_at
		FROM contents c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = ?
		ORDER BY c.created_at DESC`
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := []models.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

// DeleteContent removes a content record after verifying the caller owns it.
// A record that does not exist and a record owned by someone else are
// indistinguishable to the caller: both return ErrContentNotFound.
func (s *ContentService) DeleteContent(userID, contentID string) error {
	var ownerID string
	row := s.db.QueryRow("SELECT user_id FROM contents WHERE id = ?", contentID)
	if err := row.Scan(&ownerID); err != nil {
		if err == sql.ErrNoRows {
			return ErrContentNotFound
		}
		return err
	}
	if ownerID != userID {
		return ErrContentNotFound
	}

	_, err := s.db.Exec("DELETE FROM contents WHERE id = ? AND user_id = ?", contentID, userID)
	return err
}
