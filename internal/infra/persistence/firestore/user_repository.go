// Package firestore implements the user directory on Cloud Firestore.
package firestore

import (
	"context"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client     *firestore.Client
	collection string
}

// NewUserRepository creates a Firestore-backed user repository
func NewUserRepository(client *firestore.Client, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		client:     client,
		collection: cfg.Notify.UsersCollection,
	}
}

// FindByRole returns all users whose role field equals the given role
func (r *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	iter := r.client.Collection(r.collection).Where("role", "==", role.String()).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query users with role %s", role)
		}

		users = append(users, toUser(doc))
	}

	return users, nil
}

// FindByID fetches one user document by id. A missing document is not an
// error: the caller receives (nil, nil).
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch user %s", id)
	}

	return toUser(doc), nil
}

// userDoc mirrors the stored document fields consumed by this system.
type userDoc struct {
	Role      string   `firestore:"role"`
	FCMTokens []string `firestore:"fcmTokens"`
}

func toUser(doc *firestore.DocumentSnapshot) *entity.User {
	var data userDoc
	if err := doc.DataTo(&data); err != nil {
		// A malformed directory record resolves to a user with no tokens,
		// which the pipeline treats as "no recipients".
		return &entity.User{ID: doc.Ref.ID}
	}

	return &entity.User{
		ID:        doc.Ref.ID,
		Role:      entity.Role(data.Role),
		FCMTokens: data.FCMTokens,
	}
}
