package repository

import "techrent/internal/listing"

// Filters built from listing query parameters. The same names are used by
// the back-office and the public catalog.

func EquipmentFilterFromParams(p listing.Params) EquipmentFilter {
	return EquipmentFilter{
		Search:         p.String("searchString"),
		CategoryID:     p.Int64("categoryId"),
		MinPrice:       p.Float("minPrice"),
		MaxPrice:       p.Float("maxPrice"),
		AvailableOnly:  p.Flag("availableOnly"),
		LowStockOnly:   p.Flag("lowStockOnly"),
		OutOfStockOnly: p.Flag("outOfStockOnly"),
		Rating:         p.String("rating"),
	}
}

func CategoryFilterFromParams(p listing.Params) CategoryFilter {
	return CategoryFilter{
		Search:          p.String("searchString"),
		MinDisplayOrder: p.Int("minDisplayOrder"),
		MaxDisplayOrder: p.Int("maxDisplayOrder"),
		HasEquipment:    p.Flag("hasEquipment"),
		EmptyCategories: p.Flag("emptyCategories"),
	}
}

func UserFilterFromParams(p listing.Params) UserFilter {
	return UserFilter{
		Search:         p.String("searchString"),
		Role:           p.String("role"),
		EmailConfirmed: p.Bool("emailConfirmed"),
		HasPhone:       p.Flag("hasPhone"),
		NoPhone:        p.Flag("noPhone"),
	}
}

func ReviewFilterFromParams(p listing.Params) ReviewFilter {
	return ReviewFilter{
		Search:      p.String("searchString"),
		EquipmentID: p.Int64("equipmentId"),
		Rating:      p.Int("rating"),
		DateFrom:    p.Date("dateFrom"),
		DateTo:      p.Date("dateTo"),
		HasComment:  p.Flag("hasComment"),
		NoComment:   p.Flag("noComment"),
	}
}
