package main

import (
	"fmt"
	"os"

	"github.com/refpay/refpay/config"
	"github.com/refpay/refpay/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start refpay-daemon: " + id)
		worker := CreateWorker(id)

		if worker == nil {
			config.Logger.Errorf("Unknown worker: %s", id)
			return
		}

		worker.Start()
	}
}
