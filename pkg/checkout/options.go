package checkout

// Option configures Order.
type Option func(*options)

type options struct {
	consumerIP string
}

// WithConsumerIP supplies the address the request came from. It is used as
// Consumer.IpAddress when the caller left that field out and the address is
// public; otherwise it is ignored.
func WithConsumerIP(ip string) Option {
	return func(o *options) { o.consumerIP = ip }
}
