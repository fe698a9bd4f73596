// Package shipment contains the delivery side of order fulfillment.
//
// A Delivery tracks the physical shipment of a single order. Its delivery
// date is present exactly while the parcel is moving or has arrived, that
// is for the Shipped, InTransit and Delivered statuses, and absent for
// Preparing and Failed.
package shipment
