package entities

type User struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:150;not null" json:"first_name"`
	LastName  string `gorm:"size:150;not null" json:"last_name"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:16;not null;default:user" json:"role"`

	// Read-only flag filled by annotated user queries.
	IsSubscribed bool `gorm:"->;-:migration" json:"is_subscribed"`
	Timestamp
}

type Subscription struct {
	ID       int64 `gorm:"primaryKey" json:"id"`
	UserID   int64 `gorm:"not null;uniqueIndex:idx_subscriptions_user_author;check:chk_subscriptions_not_self,user_id <> author_id" json:"user_id"`
	AuthorID int64 `gorm:"not null;uniqueIndex:idx_subscriptions_user_author;index" json:"author_id"`

	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Timestamp
}
