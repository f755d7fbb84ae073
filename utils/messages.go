package utils

import (
	"strings"

	"golang.org/x/text/language"
)

// Message keys for action results and error bodies.
const (
	MsgBookingCreated      = "booking.created"
	MsgBookingUpdated      = "booking.updated"
	MsgBookingDeleted      = "booking.deleted"
	MsgBookingNotFound     = "booking.notFound"
	MsgRegistrationCreated = "registration.created"
	MsgRegistrationUpdated = "registration.updated"
	MsgRegistrationDeleted = "registration.deleted"
	MsgRegistrationMissing = "registration.notFound"
	MsgValidationFailed    = "validation.failed"
	MsgInvalidPayload      = "payload.invalid"
	MsgInvalidID           = "id.invalid"
	MsgIntegrity           = "data.integrity"
	MsgInternal            = "internal"
)

var catalog = map[string]map[string]string{
	"th": {
		MsgBookingCreated:      "จองห้องพักสำเร็จ",
		MsgBookingUpdated:      "อัพเดทการจองสำเร็จ",
		MsgBookingDeleted:      "ยกเลิกการจองสำเร็จ",
		MsgBookingNotFound:     "ไม่พบการจอง",
		MsgRegistrationCreated: "ลงทะเบียนสำเร็จ",
		MsgRegistrationUpdated: "อัพเดทเกรดสำเร็จ",
		MsgRegistrationDeleted: "ยกเลิกการลงทะเบียนสำเร็จ",
		MsgRegistrationMissing: "ไม่พบข้อมูลการลงทะเบียน",
		MsgValidationFailed:    "ข้อมูลไม่ถูกต้อง",
		MsgInvalidPayload:      "payload ไม่ถูกต้อง",
		MsgInvalidID:           "รหัสไม่ถูกต้อง",
		MsgIntegrity:           "ข้อมูลที่เกี่ยวข้องไม่ครบถ้วน",
		MsgInternal:            "เกิดข้อผิดพลาดภายในระบบ",
	},
	"en": {
		MsgBookingCreated:      "Room booked successfully",
		MsgBookingUpdated:      "Booking updated successfully",
		MsgBookingDeleted:      "Booking cancelled successfully",
		MsgBookingNotFound:     "Booking not found",
		MsgRegistrationCreated: "Registration saved successfully",
		MsgRegistrationUpdated: "Grade updated successfully",
		MsgRegistrationDeleted: "Registration cancelled successfully",
		MsgRegistrationMissing: "Registration not found",
		MsgValidationFailed:    "The given data was invalid",
		MsgInvalidPayload:      "Invalid request payload",
		MsgInvalidID:           "Invalid id",
		MsgIntegrity:           "A related record is missing",
		MsgInternal:            "Internal server error",
	},
}

var supportedLocales = []language.Tag{language.Thai, language.English}

var localeMatcher = language.NewMatcher(supportedLocales)

// MatchLocale picks "th" or "en" from an Accept-Language header, falling back
// to def when the header is empty or unparsable.
func MatchLocale(acceptLanguage, def string) string {
	def = normalizeLocale(def)
	if strings.TrimSpace(acceptLanguage) == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return def
	}
	base, _ := supportedLocales[idx].Base()
	return base.String()
}

func normalizeLocale(loc string) string {
	loc = strings.ToLower(strings.TrimSpace(loc))
	if _, ok := catalog[loc]; ok {
		return loc
	}
	return "th"
}

// T returns the message for key in locale, the Thai text when the locale has
// no entry, and the key itself as a last resort.
func T(locale, key string) string {
	if msg, ok := catalog[normalizeLocale(locale)][key]; ok {
		return msg
	}
	if msg, ok := catalog["th"][key]; ok {
		return msg
	}
	return key
}
