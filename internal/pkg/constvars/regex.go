package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM           = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexHexColorCode       = `^#([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
	RegexCompanySlug        = `^[a-z0-9]+(?:-[a-z0-9]+)*$`
	RegexPhoneNumberGeneral = `^\+?[0-9][0-9\s().-]{7,19}$`
)
