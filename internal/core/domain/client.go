package domain

// ClientSource records the acquisition channel a client came from.
type ClientSource string

const (
	SourceAvito    ClientSource = "avito"
	SourceVK       ClientSource = "vk"
	SourceYandex   ClientSource = "yandex"
	SourceFlyers   ClientSource = "flyers"
	SourceReferral ClientSource = "referral"
	SourceOther    ClientSource = "other"
)

func (s ClientSource) Valid() bool {
	switch s {
	case SourceAvito, SourceVK, SourceYandex, SourceFlyers, SourceReferral, SourceOther:
		return true
	}
	return false
}

// Client is a customer. Phone numbers are unique across clients.
type Client struct {
	ClientID string       `json:"clientId"`
	Name     string       `json:"name"`
	Phone    string       `json:"phone"`
	Address  string       `json:"address"`
	Source   ClientSource `json:"source"`
	AuditFields
}
