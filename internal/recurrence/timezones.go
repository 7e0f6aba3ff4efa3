package recurrence

import "sort"

// supportedTimezones is the fixed reference set of IANA zone identifiers the
// console offers for TIME triggers. The scheduler resolves these against its
// own zone database; a zone missing from this list is rejected outright
// rather than warned about, so a trigger can never be stored with a zone the
// dropdown never offered.
var supportedTimezones = map[string]bool{
	"UTC": true,

	"Africa/Cairo":        true,
	"Africa/Casablanca":   true,
	"Africa/Johannesburg": true,
	"Africa/Lagos":        true,
	"Africa/Nairobi":      true,

	"America/Anchorage":     true,
	"America/Argentina/Buenos_Aires": true,
	"America/Bogota":        true,
	"America/Caracas":       true,
	"America/Chicago":       true,
	"America/Denver":        true,
	"America/Godthab":       true,
	"America/Guatemala":     true,
	"America/Halifax":       true,
	"America/Lima":          true,
	"America/Los_Angeles":   true,
	"America/Mexico_City":   true,
	"America/Montevideo":    true,
	"America/New_York":      true,
	"America/Phoenix":       true,
	"America/Santiago":      true,
	"America/Sao_Paulo":     true,
	"America/St_Johns":      true,
	"America/Tijuana":       true,
	"America/Toronto":       true,
	"America/Vancouver":     true,

	"Asia/Almaty":       true,
	"Asia/Amman":        true,
	"Asia/Baghdad":      true,
	"Asia/Baku":         true,
	"Asia/Bangkok":      true,
	"Asia/Beirut":       true,
	"Asia/Colombo":      true,
	"Asia/Dhaka":        true,
	"Asia/Dubai":        true,
	"Asia/Hong_Kong":    true,
	"Asia/Irkutsk":      true,
	"Asia/Jakarta":      true,
	"Asia/Jerusalem":    true,
	"Asia/Kabul":        true,
	"Asia/Karachi":      true,
	"Asia/Kathmandu":    true,
	"Asia/Kolkata":      true,
	"Asia/Krasnoyarsk":  true,
	"Asia/Kuala_Lumpur": true,
	"Asia/Kuwait":       true,
	"Asia/Magadan":      true,
	"Asia/Manila":       true,
	"Asia/Novosibirsk":  true,
	"Asia/Riyadh":       true,
	"Asia/Seoul":        true,
	"Asia/Shanghai":     true,
	"Asia/Singapore":    true,
	"Asia/Taipei":       true,
	"Asia/Tashkent":     true,
	"Asia/Tbilisi":      true,
	"Asia/Tehran":       true,
	"Asia/Tokyo":        true,
	"Asia/Vladivostok":  true,
	"Asia/Yangon":       true,
	"Asia/Yekaterinburg": true,
	"Asia/Yerevan":      true,

	"Atlantic/Azores":     true,
	"Atlantic/Cape_Verde": true,
	"Atlantic/Reykjavik":  true,

	"Australia/Adelaide": true,
	"Australia/Brisbane": true,
	"Australia/Darwin":   true,
	"Australia/Hobart":   true,
	"Australia/Melbourne": true,
	"Australia/Perth":    true,
	"Australia/Sydney":   true,

	"Europe/Amsterdam": true,
	"Europe/Athens":    true,
	"Europe/Belgrade":  true,
	"Europe/Berlin":    true,
	"Europe/Brussels":  true,
	"Europe/Bucharest": true,
	"Europe/Budapest":  true,
	"Europe/Copenhagen": true,
	"Europe/Dublin":    true,
	"Europe/Helsinki":  true,
	"Europe/Istanbul":  true,
	"Europe/Kyiv":      true,
	"Europe/Lisbon":    true,
	"Europe/London":    true,
	"Europe/Madrid":    true,
	"Europe/Minsk":     true,
	"Europe/Moscow":    true,
	"Europe/Oslo":      true,
	"Europe/Paris":     true,
	"Europe/Prague":    true,
	"Europe/Rome":      true,
	"Europe/Stockholm": true,
	"Europe/Vienna":    true,
	"Europe/Warsaw":    true,
	"Europe/Zurich":    true,

	"Pacific/Auckland": true,
	"Pacific/Fiji":     true,
	"Pacific/Guam":     true,
	"Pacific/Honolulu": true,
	"Pacific/Midway":   true,
	"Pacific/Tongatapu": true,
}

// IsSupportedTimezone reports whether tz is in the supported zone list.
func IsSupportedTimezone(tz string) bool {
	return supportedTimezones[tz]
}

// SupportedTimezones returns the zone list sorted for display.
func SupportedTimezones() []string {
	zones := make([]string, 0, len(supportedTimezones))
	for tz := range supportedTimezones {
		zones = append(zones, tz)
	}
	sort.Strings(zones)
	return zones
}
