package models

// DefaultCategoryColor 关联不到类别时使用的中性颜色
const DefaultCategoryColor = "#000000"

// UnknownCategoryName 关联不到类别时的显示名称
const UnknownCategoryName = "Unknown"

// Category 收支类别，归属于某个用户
type Category struct {
	ID     string `json:"id" gorm:"primaryKey;size:64"`
	Name   string `json:"name" gorm:"size:50;not null"`
	Icon   string `json:"icon" gorm:"size:50;not null"`
	Color  string `json:"color" gorm:"size:20;not null"` // 颜色代码，如 #FB923C
	UserID string `json:"userId" gorm:"index;size:64;not null"`
	Seq    int64  `json:"-" gorm:"not null;default:0;index"` // 插入顺序，由存储层写入
}

func (Category) TableName() string {
	return "categories"
}
