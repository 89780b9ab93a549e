// Package observer provides the reactions attached to orders:
//   - CustomerNotifier: tells the customer, tagged with their address
//   - AdminDashboard: mirrors every change on the back-office panel
//   - DeliveryTracker: informs the courier side and starts GPS tracking when the
//     order goes out for delivery
//
// Every reaction writes its lines to a kernel.Journal; a journal error is returned
// from React and therefore aborts the notification cycle.
package observer
