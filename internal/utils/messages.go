package utils

import "golang.org/x/text/language"

// MessageKey identifies a user-facing message in the message table.
type MessageKey string

const (
	MsgMissingFields    MessageKey = "missing_fields"
	MsgInvalidUserType  MessageKey = "invalid_user_type"
	MsgUsernameTaken    MessageKey = "username_taken"
	MsgPhoneTaken       MessageKey = "phone_taken"
	MsgPasswordTooShort MessageKey = "password_too_short"
	MsgCreateFailed     MessageKey = "create_failed"
	MsgNoUsers          MessageKey = "no_users"
	MsgUserNotFound     MessageKey = "user_not_found"
	MsgUpdateFailed     MessageKey = "update_failed"
	MsgDeleteFailed     MessageKey = "delete_failed"
	MsgUnavailable      MessageKey = "unavailable"
)

// supportedLanguages is ordered by preference; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.Vietnamese,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var messageTable = map[language.Tag]map[MessageKey]string{
	language.Vietnamese: {
		MsgMissingFields:    "Cung cấp đầy đủ thông tin",
		MsgInvalidUserType:  "Loại người dùng không hợp lệ",
		MsgUsernameTaken:    "username đã tồn tại",
		MsgPhoneTaken:       "Số điện thoại đã tồn tại",
		MsgPasswordTooShort: "Mật khẩu chưa đủ độ dài tối thiểu",
		MsgCreateFailed:     "Không thể tạo người dùng",
		MsgNoUsers:          "Không tìm thấy người dùng nào",
		MsgUserNotFound:     "Không tìm thấy người dùng!",
		MsgUpdateFailed:     "Không thể cập nhật!",
		MsgDeleteFailed:     "Không thể xóa!",
		MsgUnavailable:      "Cơ sở dữ liệu không khả dụng",

		"userType.admin":          "Quản lý",
		"userType.user":           "Người dùng",
		"userType.doctor":         "Bác sĩ",
		"userType.administrative": "Nhân viên hành chánh",
		"userType.sales":          "Nhân viên bán hàng",
	},
	language.English: {
		MsgMissingFields:    "Please provide all required information",
		MsgInvalidUserType:  "Invalid user type",
		MsgUsernameTaken:    "username already exists",
		MsgPhoneTaken:       "Phone number already exists",
		MsgPasswordTooShort: "Password is shorter than the required minimum",
		MsgCreateFailed:     "Could not create user due to user error",
		MsgNoUsers:          "No users Found",
		MsgUserNotFound:     "No user Found!",
		MsgUpdateFailed:     "Could not update!",
		MsgDeleteFailed:     "Could not delete!",
		MsgUnavailable:      "Database unavailable",

		"userType.admin":          "Manager",
		"userType.user":           "User",
		"userType.doctor":         "Doctor",
		"userType.administrative": "Administrative staff",
		"userType.sales":          "Sales staff",
	},
}

// MatchLanguage picks the supported language that best fits an
// Accept-Language header value.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supportedLanguages[0]
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return supportedLanguages[idx]
}

// Message looks key up for lang, falling back to the default language and
// finally to the key itself.
func Message(lang language.Tag, key MessageKey) string {
	if msg, ok := messageTable[lang][key]; ok {
		return msg
	}
	if msg, ok := messageTable[supportedLanguages[0]][key]; ok {
		return msg
	}
	return string(key)
}
