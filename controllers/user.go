package controllers

import (
	"log"
	"net/http"
	"strings"

	"Fabler/middleware"
	"Fabler/models/game"
	models "Fabler/models/postgres"
	"Fabler/services/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// @Summary Log into an existing account
// @Description Validates email+password, opens a cookie session and returns a JWT for the socket handshake
// @Tags user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Account email"
// @Param password formData string true "Account password"
// @Success 200 {object} object{token=string,id=string,displayName=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email := c.PostForm("email")
		password := c.PostForm("password")

		// Minimum input sanitizing
		if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		account, err := st.Accounts.FindAccountByEmail(email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		token, err := middleware.IssueToken(account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		session.Set(middleware.SessionAccountKey, account.ID)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":       token,
			"id":          account.ID,
			"displayName": account.DisplayName,
		})
	}
}

// @Summary Register a new account
// @Description Creates an email-backed account and its lobby session, then logs it in
// @Tags user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Account email"
// @Param password formData string true "Account password"
// @Param displayName formData string true "Name shown in the lobby"
// @Success 200 {object} object{token=string,id=string,displayName=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		displayName := c.PostForm("displayName")

		if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" ||
			strings.TrimSpace(displayName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		if _, err := st.Accounts.FindAccountByEmail(email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		account := &models.Account{
			DisplayName:  displayName,
			Email:        email,
			PasswordHash: string(hash),
			Origin:       string(game.OriginEmail),
		}
		if err := st.Accounts.CreateAccount(account); err != nil {
			log.Printf("[SIGNUP-ERROR] creating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating account"})
			return
		}

		st.Lock()
		st.Presence.Create(account)
		st.Unlock()

		token, err := middleware.IssueToken(account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		session := sessions.Default(c)
		session.Set(middleware.SessionAccountKey, account.ID)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":       token,
			"id":          account.ID,
			"displayName": account.DisplayName,
		})
	}
}

// @Summary Enter as a guest
// @Description Creates a throwaway guest account that is deleted again on logout
// @Tags user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param displayName formData string true "Name shown in the lobby"
// @Success 200 {object} object{token=string,id=string,displayName=string}
// @Failure 400 {object} object{error=string}
// @Router /guest [post]
func GuestSignUp(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		displayName := c.PostForm("displayName")
		if strings.TrimSpace(displayName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		account := &models.Account{
			DisplayName: displayName,
			Origin:      string(game.OriginGuest),
		}
		if err := st.Accounts.CreateAccount(account); err != nil {
			log.Printf("[GUEST-ERROR] creating guest account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating account"})
			return
		}

		st.Lock()
		st.Presence.Create(account)
		st.Unlock()

		token, err := middleware.IssueToken(account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":       token,
			"id":          account.ID,
			"displayName": account.DisplayName,
		})
	}
}

// @Summary Log out of the cookie session
// @Description Deletes the session associated with the account
// @Tags user
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/logout [delete]
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(middleware.SessionAccountKey) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
		return
	}

	session.Delete(middleware.SessionAccountKey)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// @Summary Get the logged-in account
// @Description Returns the account behind the current session
// @Tags user
// @Produce json
// @Success 200 {object} object{id=string,displayName=string,email=string,origin=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
func GetPrivateInfo(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		accountID, ok := session.Get(middleware.SessionAccountKey).(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		account, err := st.Accounts.FindAccount(accountID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          account.ID,
			"displayName": account.DisplayName,
			"email":       account.Email,
			"origin":      account.Origin,
			"memberSince": account.MemberSince,
		})
	}
}

// @Summary List known accounts
// @Description Returns the public display data of every persisted account
// @Tags user
// @Produce json
// @Success 200 {array} object{id=string,displayName=string}
// @Failure 500 {object} object{error=string}
// @Router /allusers [get]
func GetAllUsers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := st.Accounts.AllAccounts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing accounts"})
			return
		}

		public := make([]gin.H, 0, len(accounts))
		for _, account := range accounts {
			public = append(public, gin.H{
				"id":          account.ID,
				"displayName": account.DisplayName,
			})
		}
		c.JSON(http.StatusOK, public)
	}
}

