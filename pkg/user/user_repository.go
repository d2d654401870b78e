package user

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repository.go -destination=mock/user_repository.go -package=mock

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id int64, viewerID int64) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		CheckEmailExists(ctx context.Context, email string) (bool, error)
		CheckUsernameExists(ctx context.Context, username string) (bool, error)
		GetUsers(ctx context.Context, viewerID int64, pagination domain.Pagination) ([]*entities.User, int64, error)
		UpdatePassword(ctx context.Context, id int64, passwordHash string) error
		SubscribedAuthorIDs(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// WithIsSubscribed selects users.* plus an is_subscribed column for viewerID.
// Anonymous viewers (id 0) get a constant FALSE and no subquery.
func WithIsSubscribed(db *gorm.DB, viewerID int64) *gorm.DB {
	if viewerID == 0 {
		return db.Select("users.*, FALSE AS is_subscribed")
	}
	return db.Select(
		"users.*, EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = ? AND s.author_id = users.id) AS is_subscribed",
		viewerID,
	)
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64, viewerID int64) (*entities.User, error) {
	var user entities.User
	if err := WithIsSubscribed(r.db.WithContext(ctx).Model(&entities.User{}), viewerID).
		Where("users.id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) GetUsers(ctx context.Context, viewerID int64, pagination domain.Pagination) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := WithIsSubscribed(r.db.WithContext(ctx).Model(&entities.User{}), viewerID).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Order("users.id asc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}

func (r *userRepository) SubscribedAuthorIDs(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error) {
	subscribed := make(map[int64]bool)
	if viewerID == 0 || len(authorIDs) == 0 {
		return subscribed, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND author_id IN ?", viewerID, authorIDs).
		Pluck("author_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		subscribed[id] = true
	}
	return subscribed, nil
}
