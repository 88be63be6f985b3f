package configs

import (
	"log"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/services"
)

type seedItem struct {
	name      string
	priceText string
	category  string
	featured  bool
	detail    string
}

// The catalog ships with textual prices; they are parsed exactly once
// here and stored as decimals for good.
var defaultMenu = []seedItem{
	{"三文鱼寿司", "15元", entity.CategorySushi, true, "salmon nigiri, two pieces"},
	{"鳗鱼寿司", "18元", entity.CategorySushi, false, "grilled eel nigiri"},
	{"加州卷", "20元", entity.CategorySushi, false, "crab stick, avocado, cucumber"},
	{"经典手卷", "12元", entity.CategoryHandroll, true, "seaweed cone with rice and veg"},
	{"培根手卷", "15元", entity.CategoryHandroll, false, "handroll with crispy bacon"},
	{"原味煎饼", "10元", entity.CategoryPancake, false, "plain pancake, made to order"},
	{"芝士煎饼", "13元", entity.CategoryPancake, true, "pancake with melted cheese"},
}

func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("menu already seeded, skipping")
		return nil
	}

	for _, it := range defaultMenu {
		row := entity.MenuItem{
			Name:        it.name,
			Price:       services.PriceFromText(it.priceText),
			Category:    it.category,
			IsFeatured:  it.featured,
			IsAvailable: true,
			Description: it.detail,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d menu items", len(defaultMenu))
	return nil
}
