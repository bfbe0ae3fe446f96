package utils

import "fmt"

// VerificationEmailHTML builds the account-verification mail body. The token
// is embedded in a link the frontend exchanges against /auth/verify/:token.
func VerificationEmailHTML(frontendURL, token string) string {
	link := fmt.Sprintf("%s/verify-email/%s", frontendURL, token)
	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;border:1px solid #e2e8f0;border-radius:8px;overflow:hidden">
  <div style="background:#0d9488;padding:24px;text-align:center">
    <h1 style="color:#ffffff;margin:0">Care Insight</h1>
  </div>
  <div style="padding:32px">
    <h2 style="color:#1e293b">Verify your email address</h2>
    <p style="color:#475569">Thanks for signing up. Please confirm your email address to activate your account.</p>
    <p style="text-align:center;margin:32px 0">
      <a href="%s" style="background:#0d9488;color:#ffffff;padding:12px 32px;border-radius:6px;text-decoration:none">Verify Email</a>
    </p>
    <p style="color:#94a3b8;font-size:12px">If you did not create an account, you can safely ignore this email.</p>
  </div>
</div>`, link)
}

// OTPEmailHTML builds the password-reset mail body carrying the 6-digit code.
func OTPEmailHTML(code string) string {
	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;border:1px solid #e2e8f0;border-radius:8px;overflow:hidden">
  <div style="background:#0d9488;padding:24px;text-align:center">
    <h1 style="color:#ffffff;margin:0">Care Insight</h1>
  </div>
  <div style="padding:32px">
    <h2 style="color:#1e293b">Password reset code</h2>
    <p style="color:#475569">Use the code below to reset your password. It expires in 10 minutes.</p>
    <p style="text-align:center;margin:32px 0">
      <span style="display:inline-block;background:#f1f5f9;color:#0d9488;font-size:28px;letter-spacing:8px;padding:12px 24px;border-radius:6px">%s</span>
    </p>
    <p style="color:#94a3b8;font-size:12px">If you did not request a password reset, you can safely ignore this email.</p>
  </div>
</div>`, code)
}
