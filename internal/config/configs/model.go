package configs

// Model locates the pre-trained engagement regression artifact. The
// artifact is loaded once at process start and treated as read-only for
// the process lifetime.
type Model struct {
	// Path is the on-disk location of the model artifact.
	Path string `env:"PATH" envDefault:"model_engagement_rate.json"`
}
