package db_models

import "sort"

// Province is one map region as stored in provinces.json.
type Province struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Owner       string `json:"owner"`
	Development int    `json:"development"`
	TradeGoods  string `json:"trade_goods"`
	Terrain     string `json:"terrain"`
	Description string `json:"description"`
}

// ProvincesData is the root of provinces.json. Keys of Provinces are lookup
// handles and may differ from the Province.ID they map to.
type ProvincesData struct {
	Provinces map[string]Province `json:"provinces"`
}

func NewProvincesData() *ProvincesData {
	return &ProvincesData{Provinces: make(map[string]Province)}
}

func (d *ProvincesData) Lookup(key string) (Province, bool) {
	if d == nil {
		return Province{}, false
	}
	p, ok := d.Provinces[key]
	return p, ok
}

func (d *ProvincesData) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Provinces)
}

// Keys returns the lookup keys in ascending order.
func (d *ProvincesData) Keys() []string {
	if d == nil {
		return []string{}
	}
	keys := make([]string, 0, len(d.Provinces))
	for k := range d.Provinces {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
