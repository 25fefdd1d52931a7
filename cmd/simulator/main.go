package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Simulator drives the hire lifecycle over the HTTP API: a manager
// account creates a batch of hires, a driver account accepts, starts and
// completes (or returns) them. Useful for demos and smoke tests against
// a running server.

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type hirePayload struct {
	ID             string  `json:"id"`
	HireID         string  `json:"hire_id"`
	PassengerName  string  `json:"passenger_name"`
	PickupLocation string  `json:"pickup_location"`
	DropLocation   string  `json:"drop_location"`
	DateTime       string  `json:"date_time"`
	HirePrice      float64 `json:"hire_price"`
	Status         string  `json:"status"`
}

var passengers = []string{
	"Nimal Perera", "Kamala Silva", "Ruwan Fernando", "Sanduni Jayawardena",
	"Ashen Wickramasinghe", "Dilani Gunasekara", "Tharindu Bandara", "Ishara De Silva",
}

var places = []string{
	"Colombo Fort", "Kandy City Centre", "Galle Face", "Negombo Beach",
	"Katunayake Airport", "Nuwara Eliya", "Matara", "Jaffna Town",
}

func request(method, url, token string, body []byte) (*http.Response, error) {
	if body == nil {
		body = []byte("{}")
	}
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func login(apiURL, email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := request(http.MethodPost, apiURL+"/auth/login", "", payload)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("decode login data: %w", err)
	}
	if data.Token == "" {
		return "", fmt.Errorf("no token in login response")
	}
	return data.Token, nil
}

func mustLogin(apiURL, emailVar, passwordVar string) string {
	email := os.Getenv(emailVar)
	password := os.Getenv(passwordVar)
	if email == "" || password == "" {
		log.Fatalf("Set %s and %s to run the simulator", emailVar, passwordVar)
	}
	token, err := login(apiURL, email, password)
	if err != nil {
		log.WithError(err).WithField("email", email).Fatal("Login failed")
	}
	log.WithField("email", email).Info("Logged in")
	return token
}

func createHire(apiURL, token string) (*hirePayload, error) {
	pickup := places[rand.Intn(len(places))]
	destination := places[rand.Intn(len(places))]
	for destination == pickup {
		destination = places[rand.Intn(len(places))]
	}

	body, _ := json.Marshal(map[string]interface{}{
		"passenger_name":       passengers[rand.Intn(len(passengers))],
		"pickup_location":      pickup,
		"drop_location":        destination,
		"date_time":            time.Now().Add(time.Duration(1+rand.Intn(72)) * time.Hour).Format(time.RFC3339),
		"number_of_passengers": 1 + rand.Intn(4),
		"hire_price":           float64(1000+rand.Intn(9000)) + []float64{0, 0.25, 0.5, 0.75}[rand.Intn(4)],
		"vehicle_type":         []string{"Car", "Van", "Bus"}[rand.Intn(3)],
		"assignment_type":      "auto",
	})

	resp, err := request(http.MethodPost, apiURL+"/hires", token, body)
	if err != nil {
		return nil, fmt.Errorf("create hire: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("hire creation failed with status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	var created hirePayload
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return nil, fmt.Errorf("decode hire: %w", err)
	}

	log.WithFields(log.Fields{
		"hire_id":   created.HireID,
		"pickup":    created.PickupLocation,
		"price":     created.HirePrice,
		"passenger": created.PassengerName,
	}).Info("Created hire")

	return &created, nil
}

func driverAction(apiURL, token, id, action string, body map[string]string) error {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	resp, err := request(http.MethodPost, apiURL+"/driver/hires/"+id+"/"+action, token, payload)
	if err != nil {
		return fmt.Errorf("%s hire: %w", action, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed with status: %d", action, resp.StatusCode)
	}
	return nil
}

func driveLifecycle(apiURL, driverToken string, hire *hirePayload, pause time.Duration) {
	if err := driverAction(apiURL, driverToken, hire.ID, "accept", nil); err != nil {
		log.WithError(err).WithField("hire_id", hire.HireID).Error("Failed to accept hire")
		return
	}
	log.WithField("hire_id", hire.HireID).Info("Accepted hire")
	time.Sleep(pause)

	// A slice of hires gets returned to the pool instead of driven.
	if rand.Intn(10) == 0 {
		err := driverAction(apiURL, driverToken, hire.ID, "return", map[string]string{"reason": "Vehicle unavailable"})
		if err != nil {
			log.WithError(err).WithField("hire_id", hire.HireID).Error("Failed to return hire")
			return
		}
		log.WithField("hire_id", hire.HireID).Info("Returned hire")
		return
	}

	if err := driverAction(apiURL, driverToken, hire.ID, "start", nil); err != nil {
		log.WithError(err).WithField("hire_id", hire.HireID).Error("Failed to start trip")
		return
	}
	log.WithField("hire_id", hire.HireID).Info("Started trip")
	time.Sleep(pause)

	err := driverAction(apiURL, driverToken, hire.ID, "complete", map[string]string{"notes": "Trip completed without issues"})
	if err != nil {
		log.WithError(err).WithField("hire_id", hire.HireID).Error("Failed to complete trip")
		return
	}
	log.WithField("hire_id", hire.HireID).Info("Completed trip")
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	hireCount := 10
	if val := os.Getenv("HIRE_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			hireCount = n
		}
	}

	pause := 2 * time.Second
	if v := os.Getenv("SIM_PAUSE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			pause = time.Duration(n) * time.Second
		}
	}

	managerToken := mustLogin(apiURL, "SIM_MANAGER_EMAIL", "SIM_MANAGER_PASSWORD")
	driverToken := mustLogin(apiURL, "SIM_DRIVER_EMAIL", "SIM_DRIVER_PASSWORD")

	log.WithFields(log.Fields{
		"hire_count": hireCount,
		"api_url":    apiURL,
		"pause":      pause,
	}).Info("Starting hire simulation")

	created := make([]*hirePayload, 0, hireCount)
	for i := 0; i < hireCount; i++ {
		hire, err := createHire(apiURL, managerToken)
		if err != nil {
			log.WithError(err).Error("Failed to create hire")
			continue
		}
		created = append(created, hire)
	}

	log.WithField("created_hires", len(created)).Info("Hire creation completed")
	if len(created) == 0 {
		log.Error("No hires created. Ensure credentials are valid and API is reachable. Exiting.")
		return
	}

	for _, hire := range created {
		driveLifecycle(apiURL, driverToken, hire, pause)
	}

	log.Info("Hire simulation completed")
}
