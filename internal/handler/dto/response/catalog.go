package response

import (
	"encoding/json"

	"stand-ledger/internal/domain/sale"
	"stand-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
}

var moneyConverter = copier.TypeConverter{
	SrcType: sale.Money{},
	DstType: json.Number(""),
	Fn: func(src any) (any, error) {
		return src.(sale.Money).Number(), nil
	},
}

func FromItemViews(views []queries.ItemView) ([]ItemResponse, error) {
	res := make([]ItemResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, views, copier.Option{
		Converters: []copier.TypeConverter{moneyConverter},
	}); err != nil {
		return nil, err
	}
	return res, nil
}
