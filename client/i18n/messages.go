package i18n

var translations = map[string]map[string]string{
	English: {
		"nav.home":       "Home",
		"nav.pujas":      "Poojas",
		"nav.booking":    "Book a Pooja",
		"nav.contact":    "Contact",
		"temple.name":    "Someswar Mahadev Temple",
		"temple.tagline": "Har Har Mahadev",

		"booking.title":               "Book Your Pooja",
		"booking.submit":              "Proceed to Payment",
		"booking.captchaRequired":     "Please verify the captcha before submitting",
		"booking.errors.nameRequired":    "Name is required",
		"booking.errors.emailRequired":   "Valid email is required",
		"booking.errors.phoneRequired":   "Valid 10-digit phone number is required",
		"booking.errors.addressRequired": "Address is required",
		"booking.errors.cityRequired":    "City is required",
		"booking.errors.pincodeRequired": "Valid 6-digit pincode is required",
		"booking.errors.poojaRequired":   "Please select a pooja",
		"booking.errors.dateRequired":    "Please select a date",

		"payment.cannotPay":    "This booking cannot be paid for",
		"payment.success":      "Payment successful",
		"payment.cancelled":    "Payment cancelled",
		"confirmation.title":   "Booking Confirmed",
		"confirmation.pending": "Booking not confirmed",
		"confirmation.receipt": "Download Receipt",

		"admin.login":     "Admin Login",
		"admin.dashboard": "Dashboard",
		"admin.logout":    "Logout",
	},
	Hindi: {
		"nav.home":       "होम",
		"nav.pujas":      "पूजाएँ",
		"nav.booking":    "पूजा बुक करें",
		"nav.contact":    "संपर्क",
		"temple.name":    "सोमेश्वर महादेव मंदिर",
		"temple.tagline": "हर हर महादेव",

		"booking.title":               "अपनी पूजा बुक करें",
		"booking.submit":              "भुगतान के लिए आगे बढ़ें",
		"booking.captchaRequired":     "कृपया सबमिट करने से पहले कैप्चा सत्यापित करें",
		"booking.errors.nameRequired":    "नाम आवश्यक है",
		"booking.errors.emailRequired":   "मान्य ईमेल आवश्यक है",
		"booking.errors.phoneRequired":   "मान्य 10 अंकों का फोन नंबर आवश्यक है",
		"booking.errors.addressRequired": "पता आवश्यक है",
		"booking.errors.cityRequired":    "शहर आवश्यक है",
		"booking.errors.pincodeRequired": "मान्य 6 अंकों का पिनकोड आवश्यक है",
		"booking.errors.poojaRequired":   "कृपया एक पूजा चुनें",
		"booking.errors.dateRequired":    "कृपया एक तिथि चुनें",

		"payment.cannotPay":    "इस बुकिंग का भुगतान नहीं किया जा सकता",
		"payment.success":      "भुगतान सफल",
		"payment.cancelled":    "भुगतान रद्द",
		"confirmation.title":   "बुकिंग की पुष्टि हो गई",
		"confirmation.pending": "बुकिंग की पुष्टि नहीं हुई",
		"confirmation.receipt": "रसीद डाउनलोड करें",

		"admin.login":     "एडमिन लॉगिन",
		"admin.dashboard": "डैशबोर्ड",
		"admin.logout":    "लॉगआउट",
	},
}
