package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Cognito Auth (admin identity gate)
	CognitoUserPoolID string `envconfig:"COGNITO_USER_POOL_ID"`
	CognitoClientID   string `envconfig:"COGNITO_CLIENT_ID"`
	CognitoIssuerURL  string `envconfig:"COGNITO_ISSUER_URL"`

	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes, base64
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes, base64

	// Object storage. Backend is "s3" or "supabase".
	StorageBackend  string `envconfig:"STORAGE_BACKEND" default:"s3"`
	S3Region        string `envconfig:"S3_REGION" default:"us-east-1"`
	ImageBucket     string `envconfig:"IMAGE_BUCKET" default:"images"`
	AudioBucket     string `envconfig:"AUDIO_BUCKET" default:"podcasts"`
	VideoBucket     string `envconfig:"VIDEO_BUCKET" default:"short-videos"`
	SupabaseProject string `envconfig:"SUPABASE_PROJECT"`
	SupabaseAPIKey  string `envconfig:"SUPABASE_API_KEY"`

	// Stripe giving
	StripeSecretKey  string `envconfig:"STRIPE_SECRET_KEY"`
	GivingSuccessURL string `envconfig:"GIVING_SUCCESS_URL" default:"http://localhost:8080/?notice=Merci+pour+votre+don"`
	GivingCancelURL  string `envconfig:"GIVING_CANCEL_URL" default:"http://localhost:8080/"`
}
