package domain

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrUnknownSection    = errors.New("unknown section")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrNegativeQuantity  = errors.New("negative quantity")
)
