package dto

type Filter struct {
	Limit    int64  `query:"limit"`
	Category string `query:"category"`
	Q        string `query:"q"`
}
