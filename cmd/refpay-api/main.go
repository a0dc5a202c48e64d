package main

import (
	"fmt"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/mq_client"
	"github.com/refpay/refpay/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	r := routes.SetupRouter()
	r.Listen(":3000")
}
