package configs

// Media configures storage of uploaded advertisement media. Dir is the
// directory the disk-backed store writes into.
type Media struct {
	Dir string `env:"DIR" envDefault:"./media"`
}
