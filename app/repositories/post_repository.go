package repositories

import (
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"pulsewave/app/models"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Posts are
// stored in their persisted row shape (nullable columns) and mapped to
// fully-populated posts on every read.
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create assigns an id, stamps creation time, and stores the post.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.BeforeCreate()

	data, err := marshalRow(models.NewRow(*post))
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var row models.PostRow

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalRow(val, &row)
		})
	})

	if err != nil {
		return nil, err
	}
	post := row.ToPost()
	return &post, nil
}

// List retrieves up to limit posts ordered by creation time descending.
func (r *BadgerPostRepository) List(limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var row models.PostRow
			err := item.Value(func(val []byte) error {
				return unmarshalRow(val, &row)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			post := row.ToPost()
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// Increment bumps one reaction counter by exactly one inside a single
// transaction and returns the updated post. The field must belong to the
// reaction allow-set.
func (r *BadgerPostRepository) Increment(id, field string) (*models.Post, error) {
	if !models.IsReactionField(field) {
		return nil, fmt.Errorf("invalid reaction field %q", field)
	}

	var updated models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var row models.PostRow
		if err := item.Value(func(val []byte) error {
			return unmarshalRow(val, &row)
		}); err != nil {
			return err
		}

		post := row.ToPost()
		if err := post.Bump(field); err != nil {
			return err
		}

		data, err := marshalRow(models.NewRow(post))
		if err != nil {
			return err
		}
		if err := txn.Set(postKey(id), data); err != nil {
			return err
		}
		updated = post
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}
