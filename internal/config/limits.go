package config

type Limits struct {
	RateLimit        RateLimitConfig `yaml:"rate_limit" validate:"required"`
	BatchConcurrency int             `yaml:"batch_concurrency" validate:"required,min=1,max=64"`
	MaxBatchSize     int             `yaml:"max_batch_size" validate:"required,min=1,max=500"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=1000"`
}

func DefaultLimits() Limits {
	return Limits{
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			BurstSize:         40,
		},
		BatchConcurrency: 4,
		MaxBatchSize:     50,
	}
}
