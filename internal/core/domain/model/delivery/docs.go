// Package delivery models the interchangeable delivery strategies of the flower shop.
//
// The package includes:
//   - Mode: the closed set of delivery modes (Bike, Car, Drone)
//   - Strategy: the single "execute delivery" capability shared by every mode
//   - Bike, Car, Drone: the concrete strategies with their mode-specific constants
//
// Strategies are stateless apart from their constants. A new value is built for every
// selection and dropped afterwards; the only effect of Execute is one confirmation line
// written to a kernel.Journal.
package delivery
