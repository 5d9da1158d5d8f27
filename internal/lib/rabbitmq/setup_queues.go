package rabbitmq

// EmailExchange имя exchange, через который проходят все почтовые задачи.
const EmailExchange = "emails"

// QueueConfig связывает имя очереди с ключом маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetEmailQueues возвращает список очередей почтовых задач сервиса.
func GetEmailQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "user.welcome", RoutingKey: "welcome"},
		{QueueName: "user.password_reset", RoutingKey: "password_reset"},
	}
}
