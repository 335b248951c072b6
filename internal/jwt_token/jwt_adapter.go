package jwttoken

// VerifyAdminToken satisfies the admin middleware's TokenVerifier.
func (s *JWTService) VerifyAdminToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
