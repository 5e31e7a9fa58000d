package main

import (
	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/routes"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
