package subscription

import (
	"context"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/pkg/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=subscription_repository.go -destination=mock/subscription_repository.go -package=mock

type (
	SubscriptionRepository interface {
		Subscribe(ctx context.Context, userID, authorID int64) (bool, error)
		Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error)
		GetSubscribedAuthors(ctx context.Context, userID int64, pagination domain.Pagination) ([]*entities.User, int64, error)
		CountRecipesByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
		GetRecipePreviews(ctx context.Context, authorIDs []int64, limit int) (map[int64][]*entities.Recipe, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, userID, authorID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&entities.Subscription{UserID: userID, AuthorID: authorID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&entities.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetSubscribedAuthors pages through the authors userID follows, newest
// subscription first.
func (r *subscriptionRepository) GetSubscribedAuthors(ctx context.Context, userID int64, pagination domain.Pagination) ([]*entities.User, int64, error) {
	var authors []*entities.User
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := user.WithIsSubscribed(r.db.WithContext(ctx).Model(&entities.User{}), userID).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID).
		Order("subscriptions.id desc").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&authors).Error; err != nil {
		return nil, 0, err
	}

	return authors, count, nil
}

func (r *subscriptionRepository) CountRecipesByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID int64
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// GetRecipePreviews returns the newest recipes of each author, at most limit
// per author. A limit of zero or less returns all of them.
func (r *subscriptionRepository) GetRecipePreviews(ctx context.Context, authorIDs []int64, limit int) (map[int64][]*entities.Recipe, error) {
	previews := make(map[int64][]*entities.Recipe, len(authorIDs))
	if len(authorIDs) == 0 {
		return previews, nil
	}

	ranked := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.id, recipes.author_id, recipes.name, recipes.image_url, recipes.cooking_time, recipes.pub_date, " +
			"ROW_NUMBER() OVER (PARTITION BY recipes.author_id ORDER BY recipes.pub_date DESC, recipes.id DESC) AS rn").
		Where("recipes.author_id IN ?", authorIDs)

	query := r.db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Select("ranked.id, ranked.author_id, ranked.name, ranked.image_url, ranked.cooking_time, ranked.pub_date")
	if limit > 0 {
		query = query.Where("ranked.rn <= ?", limit)
	}

	var recipes []*entities.Recipe
	if err := query.Order("ranked.author_id").Order("ranked.rn").Scan(&recipes).Error; err != nil {
		return nil, err
	}

	for _, recipe := range recipes {
		previews[recipe.AuthorID] = append(previews[recipe.AuthorID], recipe)
	}
	return previews, nil
}
