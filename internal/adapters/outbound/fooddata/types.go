package fooddata

// searchRequest is the body of POST /foods/search.
type searchRequest struct {
	Query    string `json:"query"`
	PageSize int    `json:"pageSize"`
}

// searchResponse is the subset of the FoodData Central search result used here.
type searchResponse struct {
	TotalHits int          `json:"totalHits"`
	Foods     []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID   int      `json:"nutrientId"`
	NutrientName string   `json:"nutrientName"`
	UnitName     string   `json:"unitName"`
	Value        *float64 `json:"value"`
}
