package appointment

// ===============================
// Salon Services
// ===============================

type Service string

const (
	ServiceWaxing   Service = "WAXING"
	ServiceManicure Service = "MANICURE"
	ServiceMassage  Service = "MASSAGE"
)

var serviceLabels = map[Service]string{
	ServiceWaxing:   "Waxing",
	ServiceManicure: "Manicure",
	ServiceMassage:  "Massage",
}

func IsValidService(s Service) bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label returns the human-readable name used in confirmation e-mails.
func (s Service) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}
