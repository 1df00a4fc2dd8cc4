package database

import (
	"log"

	"fashion-platform/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedStyleRules 初始化体型穿搭规则静态数据
// 规则表为只读参考数据，已有内容时跳过
func SeedStyleRules(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StyleRule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rules := []models.StyleRule{
		{Gender: "Women", Name: "Apple", Guidance: datatypes.JSON([]byte(`{"tops":"V-neck and scoop neck flowy tops that elongate the torso","bottoms":"straight-leg pants and A-line skirts with mid rise","dresses":"empire waist dresses and wrap dresses","avoids":"clingy fabrics around the midsection and wide belts"}`))},
		{Gender: "Women", Name: "Pear", Guidance: datatypes.JSON([]byte(`{"tops":"boat neck and off-shoulder tops with structured shoulders","bottoms":"dark-wash bootcut jeans and A-line skirts","dresses":"fit-and-flare dresses that highlight the waist","avoids":"skinny pants with tight tops and cargo pockets on hips"}`))},
		{Gender: "Women", Name: "Hourglass", Guidance: datatypes.JSON([]byte(`{"tops":"fitted wrap tops and scoop necklines that follow the waist","bottoms":"high-waisted pencil skirts and bootcut jeans","dresses":"body-con and belted wrap dresses","avoids":"boxy oversized cuts that hide the waistline"}`))},
		{Gender: "Women", Name: "Rectangle", Guidance: datatypes.JSON([]byte(`{"tops":"peplum tops and ruffled blouses that create curves","bottoms":"flared pants and pleated skirts for volume","dresses":"belted shirt dresses and A-line cuts","avoids":"straight shift dresses without waist definition"}`))},
		{Gender: "Women", Name: "Inverted Triangle", Guidance: datatypes.JSON([]byte(`{"tops":"V-necks and vertical details with minimal shoulder embellishment","bottoms":"wide-leg pants and full skirts in bright colors","dresses":"A-line dresses that add volume below the waist","avoids":"shoulder pads, puff sleeves and boat necklines"}`))},
		{Gender: "Men", Name: "Rectangle", Guidance: datatypes.JSON([]byte(`{"tops":"layered jackets and horizontal stripe shirts that add width","bottoms":"slim straight chinos with mid rise","outerwear":"structured blazers with padded shoulders","avoids":"ultra skinny fits that emphasize a straight frame"}`))},
		{Gender: "Men", Name: "Oval", Guidance: datatypes.JSON([]byte(`{"tops":"vertical stripe button-downs in darker solid tones","bottoms":"straight-leg trousers with flat front","outerwear":"single-breasted unstructured jackets","avoids":"tight knits and bold waist-level prints"}`))},
		{Gender: "Men", Name: "Triangle", Guidance: datatypes.JSON([]byte(`{"tops":"structured shoulders and crew necks that broaden the chest","bottoms":"dark tapered trousers without hip detailing","outerwear":"double-breasted blazers that balance the hips","avoids":"skinny jeans and hip-length busy prints"}`))},
		{Gender: "Men", Name: "Inverted Triangle", Guidance: datatypes.JSON([]byte(`{"tops":"plain fitted tees with minimal shoulder structure","bottoms":"straight or relaxed-leg pants that add lower volume","outerwear":"longline cardigans and unstructured coats","avoids":"tank tops and heavily padded shoulders"}`))},
		{Gender: "Men", Name: "Trapezoid", Guidance: datatypes.JSON([]byte(`{"tops":"most cuts work, fitted oxford shirts recommended","bottoms":"slim straight denim with mid rise","outerwear":"bomber jackets and tailored blazers","avoids":"oversized silhouettes that hide natural proportion"}`))},
	}

	if err := db.Create(&rules).Error; err != nil {
		return err
	}
	log.Printf("[Database] 已初始化 %d 条穿搭规则", len(rules))
	return nil
}
