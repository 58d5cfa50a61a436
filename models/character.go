package models

type Character struct {
	Id        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:250;not null" json:"name"`
	Gender    string     `gorm:"size:20;not null" json:"gender"`
	Height    string     `gorm:"size:250;not null" json:"height"`
	Favorites []Favorite `gorm:"foreignKey:CharactersId" json:"-"`
}

func (Character) TableName() string {
	return "characters"
}

type Planet struct {
	Id         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:250;not null" json:"name"`
	Population string     `gorm:"size:250;not null" json:"population"`
	Terrain    string     `gorm:"size:250;not null" json:"terrain"`
	Favorites  []Favorite `gorm:"foreignKey:PlanetsId" json:"-"`
}

func (Planet) TableName() string {
	return "planets"
}
