package models

type User struct {
	Id        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:250;not null" json:"name"`
	Email     string     `gorm:"size:250;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserId" json:"favorites"`
}

func (User) TableName() string {
	return "user"
}

type SerializedUser struct {
	Id        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Favorites []Favorite `json:"favorites"`
}

// Serialize expects Favorites to be preloaded. The embedded favorites never
// reference back into the user.
func (u *User) Serialize() *SerializedUser {
	//goland:noinspection GoPreferNilSlice
	favorites := []Favorite{}

	for _, f := range u.Favorites {
		if f.UserId != nil && *f.UserId == u.Id {
			favorites = append(favorites, f)
		}
	}

	return &SerializedUser{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favorites,
	}
}
