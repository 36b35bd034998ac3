package order

import (
	"bytes"
	"html/template"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; margin: 20px; color: #333; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
    th, td { padding: 10px; border: 1px solid #ddd; }
    th { background-color: #f4f4f4; }
  </style>
</head>
<body>
  <h1>Order Confirmation</h1>

  <div>
    <h2>Order Information</h2>
    <table>
      <tr><th>Order ID</th><td>{{.ID}}</td></tr>
      <tr><th>Order Date</th><td>{{.OrderDate.Format "02 Jan 2006 15:04"}}</td></tr>
      <tr><th>Status</th><td>{{.OrderStatus}}</td></tr>
      <tr><th>Tracking Number</th><td>{{.TrackingNumber}}</td></tr>
    </table>
  </div>

  <div>
    <h2>Shipping Address</h2>
    <table>
      <tr><th>Name</th><td>{{.ShippingAddress.Name}}</td></tr>
      <tr><th>Phone</th><td>{{.ShippingAddress.Number}}</td></tr>
      <tr><th>Address</th><td>{{.ShippingAddress.Street}}, {{.ShippingAddress.City}}, {{.ShippingAddress.State}} - {{.ShippingAddress.PinCode}}</td></tr>
    </table>
  </div>

  <div>
    <h2>Products</h2>
    <table>
      <thead>
        <tr><th>Name</th><th>Quantity</th><th>Price</th></tr>
      </thead>
      <tbody>
        {{range .Products}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div>
    <h2>Expected Delivery</h2>
    <table>
      <thead>
        <tr><th>Stage</th><th>Date</th></tr>
      </thead>
      <tbody>
        {{range .ExpectedDelivery}}<tr><td>{{.Label}}</td><td>{{.Date}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <div>
    <h2>Payment Information</h2>
    <table>
      <tr><th>Method</th><td>{{.PaymentMethod}}</td></tr>
      <tr><th>Amount</th><td>{{.Amount}}</td></tr>
      <tr><th>Transaction ID</th><td>{{.TransactionID}}</td></tr>
    </table>
  </div>
</body>
</html>`))

// ConfirmationBody renders the order-confirmation e-mail for o.
func ConfirmationBody(o *Order) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, o); err != nil {
		return "", err
	}
	return buf.String(), nil
}
