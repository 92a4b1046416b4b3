package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/snapwall/snapwall/models"
	"github.com/snapwall/snapwall/storage"
	"github.com/snapwall/snapwall/utils"
)

// PostCreator runs the create-with-attachment workflow: copy the blob into
// permanent storage, insert the post row in one transaction, and compensate
// by deleting the blob when the transaction cannot complete. The database
// cannot undo the filesystem copy, so the delete is mandatory, not optional.
//
// Known gap: a crash between a failed commit and the compensating delete
// leaves an orphan blob; reconciling those needs an out-of-band sweep.
type PostCreator struct {
	db    *gorm.DB
	store storage.Store
	log   *zap.SugaredLogger
}

// NewPostCreator wires the workflow to its datastore and blob store.
func NewPostCreator(db *gorm.DB, store storage.Store, log *zap.SugaredLogger) *PostCreator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &PostCreator{db: db, store: store, log: log}
}

// CreateInput carries the validated pieces of a create request.
type CreateInput struct {
	Title string
	Text  string
	File  UploadCandidate
}

// Create persists the attachment and the post record with all-or-nothing
// semantics. On success exactly one row and one blob exist; on any failure
// neither does. The candidate must already have passed ValidateAttachment.
func (c *PostCreator) Create(ctx context.Context, owner utils.Principal, in CreateInput) (models.Post, error) {
	tx := c.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return models.Post{}, fmt.Errorf("%w: begin: %v", ErrPersistence, tx.Error)
	}

	// Timestamp prefix keeps names unique under concurrent uploads of the
	// same filename without any cross-request coordination.
	stored := storedName(in.File.Filename)

	if err := c.store.Save(stored, in.File.Reader); err != nil {
		tx.Rollback()
		return models.Post{}, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	post := models.Post{
		Title:     in.Title,
		Text:      in.Text,
		UUID:      uuid.NewString(),
		Image:     stored,
		UserID:    owner.SubjectID,
		CreatedAt: time.Now(),
	}

	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		c.removeOrphan(stored)
		return models.Post{}, fmt.Errorf("%w: insert: %v", ErrPersistence, err)
	}

	if err := tx.Commit().Error; err != nil {
		c.removeOrphan(stored)
		return models.Post{}, fmt.Errorf("%w: commit: %v", ErrPersistence, err)
	}

	return post, nil
}

// removeOrphan is the compensating action for a failed transaction. A
// failure here is a durability gap needing operator attention, so it is
// logged as a warning rather than surfaced to the request.
func (c *PostCreator) removeOrphan(name string) {
	if err := c.store.Remove(name); err != nil {
		c.log.Warnw("orphan blob left in store after rollback", "blob", name, "error", err)
	}
}

func storedName(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename))
}
