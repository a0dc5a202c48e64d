package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type Channel struct {
	Prefetch int `yaml:"prefetch"`
}

type MQClientConfig struct {
	Exchange struct {
		Deposit Exchange `yaml:"deposit"`
		Events  Exchange `yaml:"events"`
	}
	Queue struct {
		DepositExecutor Queue `yaml:"deposit_executor"`
		EventsProcessor Queue `yaml:"events_processor"`
	}
	Binding struct {
		DepositExecutor Binding `yaml:"deposit_executor"`
		EventsProcessor Binding `yaml:"events_processor"`
	}
	Channel struct {
		DepositExecutor Channel `yaml:"deposit_executor"`
	}
}
