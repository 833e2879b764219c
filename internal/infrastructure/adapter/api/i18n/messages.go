// Package i18n resolves user-facing API messages for the caller's language.
package i18n

import (
	"golang.org/x/text/language"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

// Key names a success message
type Key string

// Success message keys
const (
	SignedUp          Key = "signed_up"
	SignedIn          Key = "signed_in"
	SignedOut         Key = "signed_out"
	ProfileLoaded     Key = "profile_loaded"
	PointsAdded       Key = "points_added"
	PointsRedeemed    Key = "points_redeemed"
	RewardRedeemed    Key = "reward_redeemed"
	RewardsListed     Key = "rewards_listed"
	RewardCreated     Key = "reward_created"
	UsersListed       Key = "users_listed"
	RedemptionsListed Key = "redemptions_listed"
	RewardFulfilled   Key = "reward_fulfilled"
	LedgerChecked     Key = "ledger_checked"
	OTPSent           Key = "otp_sent"
	OTPVerified       Key = "otp_verified"
	Healthy           Key = "healthy"
	Unhealthy         Key = "unhealthy"
)

// supported languages; the first is the fallback
var supported = []language.Tag{language.English, language.Italian}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[Key]string{
	language.English: {
		SignedUp:          "Account created. Check your email for the verification code.",
		SignedIn:          "Signed in successfully.",
		SignedOut:         "Signed out successfully.",
		ProfileLoaded:     "Profile loaded.",
		PointsAdded:       "Points added successfully.",
		PointsRedeemed:    "Points redeemed successfully.",
		RewardRedeemed:    "Reward redeemed successfully.",
		RewardsListed:     "Rewards loaded.",
		RewardCreated:     "Reward created.",
		UsersListed:       "Users loaded.",
		RedemptionsListed: "Redemptions loaded.",
		RewardFulfilled:   "Reward marked as fulfilled.",
		LedgerChecked:     "Ledger checked.",
		OTPSent:           "If the address is registered, a verification code has been sent.",
		OTPVerified:       "Email verified.",
		Healthy:           "Service is healthy.",
		Unhealthy:         "Service is unavailable.",
	},
	language.Italian: {
		SignedUp:          "Account creato. Controlla la tua email per il codice di verifica.",
		SignedIn:          "Accesso effettuato.",
		SignedOut:         "Disconnessione effettuata.",
		ProfileLoaded:     "Profilo caricato.",
		PointsAdded:       "Punti aggiunti con successo.",
		PointsRedeemed:    "Punti riscattati con successo.",
		RewardRedeemed:    "Premio riscattato con successo.",
		RewardsListed:     "Premi caricati.",
		RewardCreated:     "Premio creato.",
		UsersListed:       "Utenti caricati.",
		RedemptionsListed: "Riscatti caricati.",
		RewardFulfilled:   "Premio segnato come consegnato.",
		LedgerChecked:     "Registro verificato.",
		OTPSent:           "Se l'indirizzo è registrato, è stato inviato un codice di verifica.",
		OTPVerified:       "Email verificata.",
		Healthy:           "Il servizio è attivo.",
		Unhealthy:         "Il servizio non è disponibile.",
	},
}

var errorMessages = map[language.Tag]map[int]string{
	language.English: {
		errs.CodeInvalidRequest:         "The request is invalid.",
		errs.CodeInsufficientPoints:     "You do not have enough points.",
		errs.CodeInvalidAmount:          "The amount must be a positive number of points.",
		errs.CodeInvalidUserID:          "The user is not valid.",
		errs.CodeInvalidDescription:     "A description is required.",
		errs.CodeInvalidEmail:           "The email address is not valid.",
		errs.CodeInvalidPassword:        "The password must be between 8 and 72 characters.",
		errs.CodeInvalidCredentials:     "Invalid email or password.",
		errs.CodeUnauthenticated:        "You need to sign in.",
		errs.CodeEmailNotVerified:       "Please verify your email address first.",
		errs.CodeOTPInvalid:             "The verification code is not valid.",
		errs.CodeOTPExpired:             "The verification code has expired.",
		errs.CodeUnauthorized:           "You are not allowed to perform this action.",
		errs.CodeProfileNotFound:        "User not found.",
		errs.CodeRewardNotFound:         "Reward not found.",
		errs.CodeTransactionNotFound:    "Transaction not found.",
		errs.CodeRewardCodeNotFound:     "Reward code not found.",
		errs.CodeNotFound:               "Not found.",
		errs.CodeDuplicateEmail:         "An account with this email already exists.",
		errs.CodeAlreadyFulfilled:       "This reward has already been fulfilled.",
		errs.CodeDuplicateReward:        "A reward with this name already exists.",
		errs.CodeIdempotencyKeyReused:   "This request key was already used for a different operation.",
		errs.CodeProfileLocked:          "Your balance is busy, please try again.",
		errs.CodeDuplicateCodeCollision: "Could not issue a reward code, please try again.",
		errs.CodeTransientStore:         "The service is temporarily unavailable, please try again.",
		errs.CodeInternalServer:         "Something went wrong. Please try again later.",
	},
	language.Italian: {
		errs.CodeInvalidRequest:         "La richiesta non è valida.",
		errs.CodeInsufficientPoints:     "Non hai abbastanza punti.",
		errs.CodeInvalidAmount:          "L'importo deve essere un numero positivo di punti.",
		errs.CodeInvalidUserID:          "L'utente non è valido.",
		errs.CodeInvalidDescription:     "È richiesta una descrizione.",
		errs.CodeInvalidEmail:           "L'indirizzo email non è valido.",
		errs.CodeInvalidPassword:        "La password deve avere tra 8 e 72 caratteri.",
		errs.CodeInvalidCredentials:     "Email o password non valide.",
		errs.CodeUnauthenticated:        "Devi effettuare l'accesso.",
		errs.CodeEmailNotVerified:       "Verifica prima il tuo indirizzo email.",
		errs.CodeOTPInvalid:             "Il codice di verifica non è valido.",
		errs.CodeOTPExpired:             "Il codice di verifica è scaduto.",
		errs.CodeUnauthorized:           "Non hai i permessi per questa operazione.",
		errs.CodeProfileNotFound:        "Utente non trovato.",
		errs.CodeRewardNotFound:         "Premio non trovato.",
		errs.CodeTransactionNotFound:    "Transazione non trovata.",
		errs.CodeRewardCodeNotFound:     "Codice premio non trovato.",
		errs.CodeNotFound:               "Non trovato.",
		errs.CodeDuplicateEmail:         "Esiste già un account con questa email.",
		errs.CodeAlreadyFulfilled:       "Questo premio è già stato consegnato.",
		errs.CodeDuplicateReward:        "Esiste già un premio con questo nome.",
		errs.CodeIdempotencyKeyReused:   "Questa chiave di richiesta è già stata usata per un'altra operazione.",
		errs.CodeProfileLocked:          "Il tuo saldo è occupato, riprova.",
		errs.CodeDuplicateCodeCollision: "Impossibile generare il codice premio, riprova.",
		errs.CodeTransientStore:         "Il servizio non è momentaneamente disponibile, riprova.",
		errs.CodeInternalServer:         "Si è verificato un errore. Riprova più tardi.",
	},
}

// Match picks the supported language for an Accept-Language header value
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Message returns the success message for key in lang
func Message(lang language.Tag, key Key) string {
	if m, ok := messages[lang][key]; ok {
		return m
	}
	return messages[supported[0]][key]
}

// ErrorMessage returns the user-safe message for an error code in lang.
// Unknown codes get the generic message.
func ErrorMessage(lang language.Tag, code int) string {
	catalog, ok := errorMessages[lang]
	if !ok {
		catalog = errorMessages[supported[0]]
	}
	if m, ok := catalog[code]; ok {
		return m
	}
	return catalog[errs.CodeInternalServer]
}
