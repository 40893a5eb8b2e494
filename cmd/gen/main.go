package main

import (
	"shareplate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.FoodOfferModel{},
		model.ReservationModel{},
		model.DeviceTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
