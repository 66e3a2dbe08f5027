package db_models

// ProvinceRow is the postgres representation of one provinces entry.
type ProvinceRow struct {
	LookupKey   string `gorm:"column:lookup_key;primaryKey"`
	ProvinceID  int    `gorm:"column:province_id;not null"`
	Name        string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Owner       string `gorm:"not null"`
	Development int    `gorm:"not null"`
	TradeGoods  string `gorm:"not null"`
	Terrain     string `gorm:"not null"`
	Description string `gorm:"not null"`
}

func (ProvinceRow) TableName() string {
	return "provinces"
}

func (r ProvinceRow) ToProvince() Province {
	return Province{
		ID:          r.ProvinceID,
		Name:        r.Name,
		Type:        r.Type,
		Owner:       r.Owner,
		Development: r.Development,
		TradeGoods:  r.TradeGoods,
		Terrain:     r.Terrain,
		Description: r.Description,
	}
}

func ProvinceRowsToData(rows []ProvinceRow) *ProvincesData {
	data := NewProvincesData()
	for _, r := range rows {
		data.Provinces[r.LookupKey] = r.ToProvince()
	}
	return data
}
