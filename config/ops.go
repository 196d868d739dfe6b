package config

type Ops struct {
	// 簽發/驗證營運 API Bearer token 的密鑰
	JWTSecret string `mapstructure:"JWT_SECRET" json:"jwt_secret" yaml:"jwt_secret"`
}
